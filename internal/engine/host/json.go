// Released under an MIT license. See LICENSE.

package host

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/ensemble-lang/ensemble/internal/common"
	"github.com/ensemble-lang/ensemble/internal/common/validate"
	"github.com/ensemble-lang/ensemble/internal/interface/cell"
	"github.com/ensemble-lang/ensemble/internal/type/boolean"
	"github.com/ensemble-lang/ensemble/internal/type/hash"
	"github.com/ensemble-lang/ensemble/internal/type/list"
	"github.com/ensemble-lang/ensemble/internal/type/null"
	"github.com/ensemble-lang/ensemble/internal/type/num"
	"github.com/ensemble-lang/ensemble/internal/type/str"
)

func parse(args []cell.T) cell.T {
	v := validate.Fixed(args, 1, 1)

	d := json.NewDecoder(strings.NewReader(common.String(v[0])))
	d.UseNumber()

	c, err := decode(d)
	if err != nil {
		panic("invalid JSON: " + err.Error())
	}

	if _, err := d.Token(); !errors.Is(err, io.EOF) {
		panic("invalid JSON: unexpected data after value")
	}

	return c
}

// decode reads one value from d token by token so object keys keep
// their order.
func decode(d *json.Decoder) (cell.T, error) {
	t, err := d.Token()
	if err != nil {
		return nil, err
	}

	switch t := t.(type) {
	case json.Delim:
		switch t {
		case '[':
			items := []cell.T{}
			for d.More() {
				c, err := decode(d)
				if err != nil {
					return nil, err
				}

				items = append(items, c)
			}

			_, err = d.Token()

			return list.New(items...), err
		case '{':
			h := hash.New()
			for d.More() {
				k, err := d.Token()
				if err != nil {
					return nil, err
				}

				c, err := decode(d)
				if err != nil {
					return nil, err
				}

				h.Set(k.(string), c)
			}

			_, err = d.Token()

			return h, err
		}
	case bool:
		return boolean.New(t), nil
	case json.Number:
		return num.New(t.String()), nil
	case string:
		return str.New(t), nil
	case nil:
		return null.Null, nil
	}

	return nil, errors.New("unexpected token")
}

func stringify(args []cell.T) cell.T {
	v := validate.Fixed(args, 1, 1)

	var b strings.Builder

	encode(&b, v[0])

	return str.New(b.String())
}

func encode(b *strings.Builder, c cell.T) {
	switch t := c.(type) {
	case *str.T:
		s, _ := json.Marshal(t.String())
		b.Write(s)
	case *num.T, *boolean.T, *null.T:
		b.WriteString(common.String(c))
	case *list.T:
		b.WriteByte('[')

		for i, e := range t.Items() {
			if i > 0 {
				b.WriteByte(',')
			}

			encode(b, e)
		}

		b.WriteByte(']')
	case *hash.T:
		b.WriteByte('{')

		for i, k := range t.Keys() {
			if i > 0 {
				b.WriteByte(',')
			}

			s, _ := json.Marshal(k)
			b.Write(s)
			b.WriteByte(':')

			e, _ := t.Get(k)
			encode(b, e)
		}

		b.WriteByte('}')
	default:
		panic(c.Name() + " cannot be converted to JSON")
	}
}

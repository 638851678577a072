package udmf

import (
	"iter"

	"github.com/pkg/errors"
	"github.com/stuarthighley/doomstruct/namedlist"
)

type attribute struct {
	name  string
	value Value
}

// Object is one UDMF record: attributes in the order they were first set.
type Object struct {
	attrs *namedlist.List[*attribute]
}

func NewObject() *Object {
	return &Object{attrs: namedlist.New(func(a *attribute) string { return a.name })}
}

// Set stores v under name. Replacing a value keeps the attribute's position.
func (o *Object) Set(name string, v Value) {
	if a, ok := o.attrs.GetByKey(name); ok {
		a.value = v
		return
	}
	o.attrs.Add(&attribute{name, v})
}

func (o *Object) SetBool(name string, b bool) { o.Set(name, BoolValue(b)) }

func (o *Object) SetInt(name string, i int) { o.Set(name, IntValue(i)) }

func (o *Object) SetFloat(name string, f float64) { o.Set(name, FloatValue(f)) }

func (o *Object) SetString(name string, s string) { o.Set(name, StringValue(s)) }

// Get returns the stored value of name.
func (o *Object) Get(name string) (Value, bool) {
	a, ok := o.attrs.GetByKey(name)
	if !ok {
		return Value{}, false
	}
	return a.value, true
}

// GetBool returns name as a bool. ok is false if the attribute is absent.
func (o *Object) GetBool(name string) (b bool, ok bool) {
	v, ok := o.Get(name)
	return v.AsBool(), ok
}

func (o *Object) GetBoolOr(name string, def bool) bool {
	if b, ok := o.GetBool(name); ok {
		return b
	}
	return def
}

// GetInt returns name as an integer. ok is false if the attribute is absent; err is set if
// it is a string that is not an integer.
func (o *Object) GetInt(name string) (n int, ok bool, err error) {
	v, ok := o.Get(name)
	if !ok {
		return 0, false, nil
	}
	n, err = v.AsInt()
	if err != nil {
		return 0, true, errors.Wrapf(err, "attribute %s", name)
	}
	return n, true, nil
}

// GetIntOr returns name as an integer, or def if it is absent.
func (o *Object) GetIntOr(name string, def int) (int, error) {
	n, ok, err := o.GetInt(name)
	if !ok {
		return def, nil
	}
	return n, err
}

// GetFloat returns name as a float. ok is false if the attribute is absent; err is set if
// it is a string that is not a number.
func (o *Object) GetFloat(name string) (f float64, ok bool, err error) {
	v, ok := o.Get(name)
	if !ok {
		return 0, false, nil
	}
	f, err = v.AsFloat()
	if err != nil {
		return 0, true, errors.Wrapf(err, "attribute %s", name)
	}
	return f, true, nil
}

// GetFloatOr returns name as a float, or def if it is absent.
func (o *Object) GetFloatOr(name string, def float64) (float64, error) {
	f, ok, err := o.GetFloat(name)
	if !ok {
		return def, nil
	}
	return f, err
}

// GetString returns name rendered as text.
func (o *Object) GetString(name string) (s string, ok bool) {
	v, ok := o.Get(name)
	if !ok {
		return "", false
	}
	return v.AsString(), true
}

func (o *Object) GetStringOr(name string, def string) string {
	if s, ok := o.GetString(name); ok {
		return s
	}
	return def
}

// Remove deletes name and reports whether it was set.
func (o *Object) Remove(name string) bool {
	return o.attrs.RemoveKey(name)
}

// Keys returns the attribute names in order.
func (o *Object) Keys() []string {
	keys := make([]string, 0, o.attrs.Len())
	for _, a := range o.attrs.All() {
		keys = append(keys, a.name)
	}
	return keys
}

// All yields every attribute in order.
func (o *Object) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, a := range o.attrs.All() {
			if !yield(a.name, a.value) {
				return
			}
		}
	}
}

func (o *Object) Len() int { return o.attrs.Len() }

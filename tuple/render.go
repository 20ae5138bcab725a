package tuple

import (
	"github.com/amp-labs/amp-tuple/jsvalue"
	"golang.org/x/text/language"
)

// ToString joins the elements with commas.
func (t *Tuple) ToString() (string, error) {
	return t.join(",", jsvalue.ToString)
}

func (t *Tuple) ToJSString() (string, error) {
	return t.ToString()
}

// ToLocaleString joins the locale-specific renderings of the elements with commas.
func (t *Tuple) ToLocaleString(tag language.Tag) (string, error) {
	return t.join(",", func(v jsvalue.Value) (string, error) {
		return jsvalue.ToLocaleString(v, tag)
	})
}

func (t *Tuple) ToJSLocaleString(tag language.Tag) (string, error) {
	return t.ToLocaleString(tag)
}

// Values returns an iterator over the elements.
func (t *Tuple) Values() *jsvalue.ArrayIterator {
	return jsvalue.NewArrayIterator(NewObject(t), jsvalue.IterateValues)
}

// Keys returns an iterator over the indexes.
func (t *Tuple) Keys() *jsvalue.ArrayIterator {
	return jsvalue.NewArrayIterator(NewObject(t), jsvalue.IterateKeys)
}

// Entries returns an iterator over [index, element] pairs.
func (t *Tuple) Entries() *jsvalue.ArrayIterator {
	return jsvalue.NewArrayIterator(NewObject(t), jsvalue.IterateEntries)
}

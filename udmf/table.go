package udmf

import (
	"slices"
	"strings"

	"github.com/stuarthighley/doomstruct/namedlist"
)

type group struct {
	name    string // as first added
	structs []*Object
}

// Table is a whole UDMF map: the global attributes plus records grouped by type name.
type Table struct {
	global *Object
	groups *namedlist.List[*group]
}

func NewTable() *Table {
	return &Table{
		global: NewObject(),
		groups: namedlist.New(func(g *group) string { return strings.ToLower(g.name) }),
	}
}

// Global returns the record of top-level attributes such as "namespace".
func (t *Table) Global() *Object { return t.global }

// AddStruct appends an empty record to the group name and returns it.
func (t *Table) AddStruct(name string) *Object {
	return t.InsertStruct(name, NewObject())
}

// InsertStruct appends o to the group name and returns it.
func (t *Table) InsertStruct(name string, o *Object) *Object {
	g, ok := t.groups.GetByKey(strings.ToLower(name))
	if !ok {
		g = &group{name: name}
		t.groups.Add(g)
	}
	g.structs = append(g.structs, o)
	return o
}

// Structs returns the records of group name in insertion order. The result is empty, not
// nil, for a group that has never been added to.
func (t *Table) Structs(name string) []*Object {
	g, ok := t.groups.GetByKey(strings.ToLower(name))
	if !ok {
		return []*Object{}
	}
	return slices.Clone(g.structs)
}

// StructNames returns every group name in the order first seen.
func (t *Table) StructNames() []string {
	names := make([]string, 0, t.groups.Len())
	for _, g := range t.groups.All() {
		names = append(names, g.name)
	}
	return names
}

package dom

import "golang.org/x/net/html"

// Fragment: упорядоченный список отсоединенных узлов верхнего уровня, аналог
// DocumentFragment. При монтировании узлы уходят из фрагмента.
type Fragment struct {
	nodes []*html.Node
}

func NewFragment(nodes ...*html.Node) *Fragment {
	f := &Fragment{}
	f.Append(nodes...)
	return f
}

func (f *Fragment) Append(nodes ...*html.Node) {
	for _, n := range nodes {
		if n != nil {
			f.nodes = append(f.nodes, n)
		}
	}
}

func (f *Fragment) Nodes() []*html.Node {
	return f.nodes
}

func (f *Fragment) Len() int {
	return len(f.nodes)
}

// MoveTo добавляет все узлы в parent и опустошает фрагмент
func (f *Fragment) MoveTo(parent *html.Node) {
	Append(parent, f.nodes...)
	f.nodes = nil
}

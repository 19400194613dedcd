package svparse

// Visitor is called for each node. Calling next visits the children of n.
type Visitor func(n Node, next func() error) error

// Visit n and its descendants in source order.
func Visit(n Node, visitor Visitor) error {
	if isNil(n) {
		return nil
	}
	return visitor(n, func() error {
		for _, child := range n.Children() {
			if err := Visit(child, visitor); err != nil {
				return err
			}
		}
		return nil
	})
}

// FindAll returns all nodes of type T under root, in source order, root included.
func FindAll[T Node](root Node) []T {
	var out []T
	_ = Visit(root, func(n Node, next func() error) error {
		if t, ok := n.(T); ok {
			out = append(out, t)
		}
		return next()
	})
	return out
}

// First returns the first node of type T under root.
func First[T Node](root Node) (T, bool) {
	var (
		out   T
		found bool
	)
	_ = Visit(root, func(n Node, next func() error) error {
		if found {
			return nil
		}
		if t, ok := n.(T); ok {
			out, found = t, true
			return nil
		}
		return next()
	})
	return out, found
}

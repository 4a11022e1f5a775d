package list

// Dequeue is a double ended queue.
type Dequeue[E any] interface {
	AddFirst(ele E) error
	AddLast(ele E) error
	RemoveFirst() (E, error)
	RemoveLast() (E, error)
	GetFirst() (E, error)
	GetLast() (E, error)
	// Get returns the element at index, counted from the first element
	Get(index int) (E, error)
	Len() int
	// ForEach visits the elements from first to last until f returns false
	ForEach(f func(value E, index int) bool)
}

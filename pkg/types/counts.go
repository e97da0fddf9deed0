package types

// Count is the number of occurrences of Key.
type Count struct {
	Key   string
	Count int
}

// Counts is an ordered list of key counts, usually sorted by Count descending.
type Counts []Count

// Head returns the first n entries. n beyond the length returns everything.
func (c Counts) Head(n int) Counts {
	if n < 0 {
		n = 0
	}
	if n > len(c) {
		n = len(c)
	}
	return c[:n]
}

func (c Counts) Keys() []string {
	keys := make([]string, len(c))
	for i, e := range c {
		keys[i] = e.Key
	}
	return keys
}

func (c Counts) Total() (total int) {
	for _, e := range c {
		total += e.Count
	}
	return total
}

// Get returns the count of key and whether it exists.
func (c Counts) Get(key string) (int, bool) {
	for _, e := range c {
		if e.Key == key {
			return e.Count, true
		}
	}
	return 0, false
}

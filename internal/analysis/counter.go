package analysis

// orderedCounter is a multiset that remembers the first-seen position of
// every key, so rankings can break count ties deterministically instead of
// depending on map iteration order.
type orderedCounter struct {
	counts map[string]int
	keys   []string
}

func newOrderedCounter() *orderedCounter {
	return &orderedCounter{counts: make(map[string]int)}
}

func (c *orderedCounter) Add(key string) {
	if _, seen := c.counts[key]; !seen {
		c.keys = append(c.keys, key)
	}
	c.counts[key]++
}

func (c *orderedCounter) Count(key string) int {
	return c.counts[key]
}

// Keys returns every key in first-seen order.
func (c *orderedCounter) Keys() []string {
	return c.keys
}

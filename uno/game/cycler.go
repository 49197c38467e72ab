package game

const (
	left  = -1
	right = 1
)

// Cycler walks seat indexes in turn order.
type Cycler struct {
	size      int
	current   int
	direction int
}

func NewCycler(size int, start int) *Cycler {
	return &Cycler{
		size:      size,
		current:   start,
		direction: right,
	}
}

func (c *Cycler) Current() int {
	return c.current
}

func (c *Cycler) Direction() int {
	return c.direction
}

func (c *Cycler) ForEach(function func(int)) {
	for index := 0; index < c.size; index++ {
		function(index)
	}
}

// Peek returns the seat that Next would move to.
func (c *Cycler) Peek() int {
	return (c.current + c.direction + c.size) % c.size
}

func (c *Cycler) Next() int {
	c.current = c.Peek()
	return c.current
}

func (c *Cycler) Reverse() {
	switch c.direction {
	case right:
		c.direction = left
	case left:
		c.direction = right
	}
}

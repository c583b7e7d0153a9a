package types_test

import (
	. "gopkg.in/check.v1"

	"dllist/types"
)

type nodeSuite struct {
	l *types.List[int]
}

var _ = Suite(&nodeSuite{})

func (s *nodeSuite) SetUpTest(c *C) {
	s.l = types.New[int]()
	s.l.PushTail(1)
	s.l.PushTail(2)
	s.l.PushTail(3)
}

// checkLinks walks the list both ways and checks it against want.
func checkLinks(c *C, l *types.List[int], want []int) {
	c.Assert(l.Len(), Equals, len(want))
	c.Check(l.Items(), DeepEquals, want)

	reversed := make([]int, len(want))
	for i, v := range want {
		reversed[len(want)-1-i] = v
	}
	c.Check(l.Reversed(), DeepEquals, reversed)

	for n := l.Head(); n != nil; n = n.Next() {
		if next := n.Next(); next != nil {
			c.Check(next.Prev().Item(), Equals, n.Item())
		}
	}
}

func (s *nodeSuite) TestItemAndSetItem(c *C) {
	n := s.l.Head().Next()
	n.SetItem(20)
	c.Check(n.Item(), Equals, 20)
	c.Check(s.l.String(), Equals, "1203")
	c.Check(n.List(), Equals, s.l)
}

func (s *nodeSuite) TestPushNextInterior(c *C) {
	n := s.l.Head().PushNext(10)
	c.Check(n.Item(), Equals, 10)
	checkLinks(c, s.l, []int{1, 10, 2, 3})
}

func (s *nodeSuite) TestPushPrevInterior(c *C) {
	s.l.Tail().PushPrev(30)
	checkLinks(c, s.l, []int{1, 2, 30, 3})
}

func (s *nodeSuite) TestPushNextOnTailDelegates(c *C) {
	other := types.New[int]()
	other.PushTail(1)
	other.PushTail(2)
	other.PushTail(3)

	s.l.Tail().PushNext(4)
	other.PushTail(4)

	checkLinks(c, s.l, other.Items())
	c.Check(s.l.Tail().Item(), Equals, 4)
}

func (s *nodeSuite) TestPushPrevOnHeadDelegates(c *C) {
	other := types.New[int]()
	other.PushTail(1)
	other.PushTail(2)
	other.PushTail(3)

	s.l.Head().PushPrev(0)
	other.PushHead(0)

	checkLinks(c, s.l, other.Items())
	c.Check(s.l.Head().Item(), Equals, 0)
}

func (s *nodeSuite) TestPopNext(c *C) {
	head := s.l.Head()
	v, ok := head.PopNext()
	c.Check(ok, Equals, true)
	c.Check(v, Equals, 2)
	checkLinks(c, s.l, []int{1, 3})
	c.Check(head.Next().Item(), Equals, 3)
}

func (s *nodeSuite) TestPopPrev(c *C) {
	tail := s.l.Tail()
	v, ok := tail.PopPrev()
	c.Check(ok, Equals, true)
	c.Check(v, Equals, 2)
	checkLinks(c, s.l, []int{1, 3})
	c.Check(tail.Prev().Item(), Equals, 1)
}

func (s *nodeSuite) TestPopAtBoundary(c *C) {
	_, ok := s.l.Tail().PopNext()
	c.Check(ok, Equals, false)
	_, ok = s.l.Head().PopPrev()
	c.Check(ok, Equals, false)
	checkLinks(c, s.l, []int{1, 2, 3})
}

func (s *nodeSuite) TestPopUpdatesTail(c *C) {
	mid := s.l.Head().Next()
	v, ok := mid.PopNext()
	c.Check(ok, Equals, true)
	c.Check(v, Equals, 3)
	c.Check(s.l.Tail().Item(), Equals, 2)
	c.Check(s.l.Tail().Next(), IsNil)
	checkLinks(c, s.l, []int{1, 2})
}

func (s *nodeSuite) TestPopUpdatesHead(c *C) {
	mid := s.l.Head().Next()
	v, ok := mid.PopPrev()
	c.Check(ok, Equals, true)
	c.Check(v, Equals, 1)
	c.Check(s.l.Head().Item(), Equals, 2)
	c.Check(s.l.Head().Prev(), IsNil)
	checkLinks(c, s.l, []int{2, 3})
}

func (s *nodeSuite) TestPopDownToOne(c *C) {
	tail := s.l.Tail()
	tail.PopPrev()
	tail.PopPrev()
	checkLinks(c, s.l, []int{3})
	c.Check(*s.l.Head(), Equals, *s.l.Tail())

	_, ok := tail.PopPrev()
	c.Check(ok, Equals, false)
	v, ok := s.l.PopHead()
	c.Check(v, Equals, 3)
	c.Check(ok, Equals, true)
	c.Check(s.l.Head(), IsNil)
	c.Check(s.l.Tail(), IsNil)
}

func (s *nodeSuite) TestPushPopRoundTrip(c *C) {
	mid := s.l.Head().Next()

	mid.PushNext(7)
	v, ok := mid.PopNext()
	c.Check(ok, Equals, true)
	c.Check(v, Equals, 7)
	checkLinks(c, s.l, []int{1, 2, 3})

	mid.PushPrev(8)
	v, ok = mid.PopPrev()
	c.Check(ok, Equals, true)
	c.Check(v, Equals, 8)
	checkLinks(c, s.l, []int{1, 2, 3})
}

func (s *nodeSuite) TestRoundTripAtBoundaries(c *C) {
	tail := s.l.Tail()
	tail.PushNext(4)
	v, ok := tail.PopNext()
	c.Check(ok, Equals, true)
	c.Check(v, Equals, 4)
	c.Check(s.l.Tail().Item(), Equals, 3)

	head := s.l.Head()
	head.PushPrev(0)
	v, ok = head.PopPrev()
	c.Check(ok, Equals, true)
	c.Check(v, Equals, 0)
	checkLinks(c, s.l, []int{1, 2, 3})
}

func (s *nodeSuite) TestStaleNodePanics(c *C) {
	mid := s.l.Head().Next()
	s.l.Head().PopNext()

	c.Check(mid.Valid(), Equals, false)
	c.Check(func() { mid.Item() }, PanicMatches, `node handle is stale: slot .*`)
	c.Check(func() { mid.PushNext(5) }, PanicMatches, `node handle is stale: .*`)

	var nilNode *types.Node[int]
	c.Check(nilNode.Valid(), Equals, false)
	c.Check(func() { nilNode.Next() }, PanicMatches, `node handle is stale: nil node`)
}

func (s *nodeSuite) TestGrowthKeepsHandles(c *C) {
	head := s.l.Head()
	n := head
	for i := 0; i < 1000; i++ {
		n = n.PushNext(100 + i)
	}
	c.Check(head.Item(), Equals, 1)
	c.Check(n.Next().Item(), Equals, 2)
	c.Check(s.l.Len(), Equals, 1003)
}

package cache

// node is one cached body, linked into its shard's recency list.
type node struct {
	key   string
	entry Entry
	prev  *node
	next  *node
}

// lruList orders nodes from most (head) to least (tail) recently used and
// tracks the bytes they hold. Not safe for concurrent use.
type lruList struct {
	head, tail *node
	len        int
	bytes      int
}

func (l *lruList) pushFront(n *node) {
	n.prev = nil
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.len++
	l.bytes += n.entry.Size()
}

func (l *lruList) moveToFront(n *node) {
	if n == l.head {
		return
	}
	l.remove(n)
	l.pushFront(n)
}

func (l *lruList) remove(n *node) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev, n.next = nil, nil
	l.len--
	l.bytes -= n.entry.Size()
}

// oldest returns the least recently used node, or nil.
func (l *lruList) oldest() *node {
	return l.tail
}

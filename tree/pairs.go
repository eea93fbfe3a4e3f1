package tree

// pair is one key/item binding in a table.
type pair struct {
	key   Key
	value Item
}

// pairs is an insertion-ordered key/item map.
type pairs struct {
	list []*pair
	idx  map[string]int
}

func (p *pairs) len() int {
	return len(p.list)
}

func (p *pairs) get(name string) *pair {
	if p.idx == nil {
		return nil
	}
	i, ok := p.idx[name]
	if !ok {
		return nil
	}
	return p.list[i]
}

// insert appends a new binding, or returns the existing one for name.
func (p *pairs) insert(key Key, value Item) *pair {
	if pr := p.get(key.name); pr != nil {
		return pr
	}
	if p.idx == nil {
		p.idx = map[string]int{}
	}
	pr := &pair{key: key, value: value}
	p.idx[key.name] = len(p.list)
	p.list = append(p.list, pr)
	return pr
}

// set binds name, replacing any existing value but keeping its position
// and key rendering.
func (p *pairs) set(key Key, value Item) {
	if pr := p.get(key.name); pr != nil {
		pr.value = value
		return
	}
	p.insert(key, value)
}

func (p *pairs) remove(name string) *pair {
	if p.idx == nil {
		return nil
	}
	i, ok := p.idx[name]
	if !ok {
		return nil
	}
	pr := p.list[i]
	p.list = append(p.list[:i], p.list[i+1:]...)
	delete(p.idx, name)
	for j := i; j < len(p.list); j++ {
		p.idx[p.list[j].key.name] = j
	}
	return pr
}

func (p *pairs) clear() {
	p.list = nil
	p.idx = nil
}

func (p *pairs) keys() []string {
	out := make([]string, 0, len(p.list))
	for _, pr := range p.list {
		out = append(out, pr.key.name)
	}
	return out
}

func (p *pairs) sortByKey() {
	n := len(p.list)
	for i := 1; i < n; i++ {
		for j := i; j > 0 && p.list[j].key.name < p.list[j-1].key.name; j-- {
			p.list[j], p.list[j-1] = p.list[j-1], p.list[j]
		}
	}
	for i, pr := range p.list {
		p.idx[pr.key.name] = i
	}
}

func (p *pairs) clone() pairs {
	var c pairs
	for _, pr := range p.list {
		c.insert(pr.key.clone(), *pr.value.Clone())
	}
	return c
}

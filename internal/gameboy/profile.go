package gameboy

// Profile counts the instructions executed by a session, indexed by
// opcode. Prefixed instructions are counted in CB by their second
// byte.
type Profile struct {
	Base [256]uint64
	CB   [256]uint64
}

func (p *Profile) record(opcode uint8, prefixed bool) {
	if prefixed {
		p.CB[opcode]++
		return
	}
	p.Base[opcode]++
}

// Total returns the number of instructions counted.
func (p *Profile) Total() uint64 {
	var total uint64
	for i := range p.Base {
		total += p.Base[i] + p.CB[i]
	}
	return total
}

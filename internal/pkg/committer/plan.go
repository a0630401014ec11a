package committer

// Op is a single file write. A whole-file write replaces Path atomically;
// an append adds Data to the end of Path, creating it if needed.
type Op struct {
	Path   string
	Data   []byte
	Append bool
}

// Plan collects the file writes of one save so they are applied together.
type Plan struct {
	ops []*Op
}

func NewPlan() *Plan {
	return &Plan{
		ops: make([]*Op, 0),
	}
}

// Add queues op. A nil op is ignored so repos can return nil for "nothing to write".
func (p *Plan) Add(op *Op) {
	if op == nil {
		return
	}
	p.ops = append(p.ops, op)
}

func (p *Plan) IsEmpty() bool {
	return len(p.ops) == 0
}

func (p *Plan) Ops() []*Op {
	return p.ops
}

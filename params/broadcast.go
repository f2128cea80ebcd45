package params

import "github.com/katalvlaran/poisson2d/comm"

// Broadcast distributes the root's parameter set to every rank of the
// fabric and returns the (identical) parsed value on all of them. The
// parameters travel in their YAML wire form, so what a rank compiles is
// exactly what a fresh Load of the same file would produce. Non-root
// callers pass their own p, which is ignored.
//
// Collective: every rank must call it at the same point of the protocol.
func Broadcast(c *comm.Comm, rootRank int, p Params) (Params, error) {
	data, err := p.Marshal()
	if err != nil {
		return Params{}, err
	}
	wire, err := c.BroadcastString(rootRank, string(data))
	if err != nil {
		return Params{}, err
	}

	return Parse([]byte(wire))
}

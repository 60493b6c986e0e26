package reedsolomon

import "rs59/tools"

var coders = tools.NewConcurrentMap[Params, *RSCoder]()

// Get returns the coder of the (n, k) code, building it on first use. The
// same coder is returned to every caller afterwards.
func Get(n, k int) (*RSCoder, error) {
	params := Params{N: n, K: k}
	if c, ok := coders.Get(params); ok {
		return c, nil
	}

	c, err := NewRSCoder(n, k)
	if err != nil {
		return nil, err
	}
	c, _ = coders.LoadOrStore(params, c)
	return c, nil
}

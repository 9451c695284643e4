package vapid

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome of one token in VerifyAll
type Result struct {
	Index  int
	Token  string
	Claims Claims
	Err    error
}

// OK reports whether the token verified
func (r Result) OK() bool {
	return r.Err == nil
}

// VerifyAll verifies tokens concurrently against one public key, at most
// Config.Concurrency at a time. Results are in input order. A failing token
// does not stop the others; tokens not started before ctx is done carry
// ctx.Err().
func (v *Verifier) VerifyAll(ctx context.Context, publicKeyBase64URL string, tokens []string) []Result {
	results := make([]Result, len(tokens))
	for i, token := range tokens {
		results[i] = Result{Index: i, Token: token}
	}

	pub, err := PublicKeyFromBase64URL(publicKeyBase64URL)
	if err != nil {
		for i := range results {
			results[i].Err = err
			v.metrics.observe(err, 0)
		}
		return results
	}

	g := new(errgroup.Group)
	g.SetLimit(v.config.Concurrency)

	for i := range results {
		if err := ctx.Err(); err != nil {
			results[i].Err = err
			v.metrics.observe(err, 0)
			continue
		}

		g.Go(func() error {
			results[i].Claims, results[i].Err = v.VerifyWithKey(ctx, results[i].Token, pub)
			return nil
		})
	}

	_ = g.Wait()
	return results
}

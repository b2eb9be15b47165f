// Package markov finds maximum-probability paths in stochastic transition
// graphs: a log-domain reparameterization of the Dijkstra engine.
//
// Overview:
//
//   - Edge weights are transition probabilities in (0, 1]. The probability
//     of a path is the product of its edge probabilities; the engine finds,
//     for every vertex, the most probable path from the source.
//   - Maximizing a product is turned into the minimization the indexed
//     min-heap already supports by keying entries on the negative log of
//     the running product: -log(p1*p2) = -log(p1) + -log(p2), so log-domain
//     keys add exactly like ordinary edge weights. On finalize the
//     probability is recovered as exp(-key).
//
// Validation split:
//
//   - Validate checks the Markov-chain preconditions: the graph must be
//     directed, every weight must lie in (0, 1], and for every vertex with
//     outgoing arcs the weights must sum to 1 within Epsilon. Callers run
//     it once per graph.
//   - MostProbable assumes a validated graph and does NOT re-run these
//     checks; it only rejects a nil graph and an out-of-range source.
//
// Ties between equally probable paths may resolve to either maximal path;
// which one is unspecified.
//
// Complexity:
//
//   - Time:  O((V + E) log V), identical to the Dijkstra skeleton.
//   - Space: O(V).
//
// Errors (sentinel):
//
//   - ErrNilGraph        if the graph is nil (Validate and MostProbable).
//   - ErrSourceOutOfRange if the source index is outside [0, n).
//   - ErrNotDirected     if Validate is given an undirected graph.
//   - ErrBadProbability  if Validate finds a weight outside (0, 1].
//   - ErrNotStochastic   if Validate finds outgoing weights not summing to 1.
package markov

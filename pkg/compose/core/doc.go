// Package core contains the composition plumbing shared by solo, mass and
// lite: argument validation, same-kind flattening, the step folds used by each
// variant, the attribute side table and options carried through context. It
// does not define a composer of its own; variants embed Base and choose the
// fold that matches their awaiting policy.
package core

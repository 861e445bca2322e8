// Package train fits GloVe parameters to co-occurrence records with
// stochastic gradient descent.
//
// The trainer owns a target vector, a context vector and two bias scalars per
// vocabulary index. Each epoch deterministically reshuffles the record
// sequence with a generator seeded by the epoch index and applies one update
// per record at a fixed learning rate. There is no adaptive step size, no
// early stopping and no convergence check; training runs exactly the
// requested number of epochs.
package train

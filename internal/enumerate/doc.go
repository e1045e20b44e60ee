// Package enumerate classifies a cloud instance population against a
// range pattern and plans the renames needed to make every instance
// conform.
//
// The whole population is classified first, then all fresh names are
// allocated in a single call. Interleaving classification with
// allocation could hand out colliding names, so a Plan is always built
// for a complete batch.
package enumerate

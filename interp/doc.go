// Package interp turns the raw right-hand side of a srcfg assignment into the
// stored entry value.
//
// Two modes exist. Raw returns the text untouched. Interpolated cuts the text
// at the first ";;" comment marker and substitutes every ${NAME} placeholder
// with the value of the environment variable NAME, looked up through an Env.
// A missing variable fails the whole value: nothing is partially substituted.
//
// The process environment is reached only through Env, so callers and tests
// can supply a fixed mapping with MapEnv or a point-in-time Snapshot.
package interp

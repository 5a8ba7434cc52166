// Package viz renders kinematic wave profiles in the terminal.
//
// [Plot] draws water depth against distance with asciigraph; discharge is
// computed by the solver but never plotted. [Summary] renders the parameters
// and profile metrics as a styled block.
package viz

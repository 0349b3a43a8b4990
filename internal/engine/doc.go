// Package engine implements the calculators behind the application: a fixed
// production linear program, Economic Order Quantity, M/M/1 queue metrics and
// break-even analysis.
//
// Every operation is a pure function of its inputs. Results keep full float64
// precision; call Rounded on a result to get the two-decimal values shown to
// users. Domain conditions (infeasible program, invalid input, unstable queue,
// non-positive margin) are returned as errors wrapping ErrInfeasible,
// ErrDomain, ErrInstability or ErrMargin.
package engine

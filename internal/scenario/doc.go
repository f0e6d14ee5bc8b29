// Package scenario runs scripted chains of quantity operations.
//
// A scenario is an HCL file declaring starting quantities and the steps
// applied to them in order:
//
//	quantity "distance" {
//	  value = "1.0"
//	  unit  = "m"
//	}
//
//	step "distance" {
//	  op           = "add"  # add | sub | mul | div, or + - * /
//	  value        = "1.0"
//	  unit         = "s"    # optional; omit for a unit-less operand
//	  expect_error = true   # optional
//	}
//
// A failing step does not stop the run: its error is recorded and the next
// step sees the quantity as it was before the failure. Run reports
// ErrUnexpectedOutcome when any step failed without expect_error, or
// succeeded with it.
package scenario

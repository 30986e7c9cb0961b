package report

// Catch recovers a panic raised by Raise or ICE and reports it through
// *errOut. It must always be deferred, mirroring
// bootstrap/report.CatchErrors. Any other panic value is re-raised: only
// SemanticError and ICE panics are part of the elaborator's control flow.
func Catch(errOut *error) {
	if x := recover(); x != nil {
		switch v := x.(type) {
		case *SemanticError:
			*errOut = v
		case iceError:
			*errOut = v
		default:
			panic(x)
		}
	}
}

package analyzer

import (
	"github.com/hexen-lang/hexen/internal/ast"
	"github.com/hexen-lang/hexen/internal/diagnostics"
	"github.com/hexen-lang/hexen/internal/token"
)

// pushLabel and popLabel bracket a labeled loop's lexical extent: labels
// are scoped purely lexically and may be reused once popped.
func (w *walker) pushLabel(name string, loop ast.Node) {
	w.labels = append(w.labels, labelFrame{name: name, loop: loop})
}

func (w *walker) popLabel() {
	if len(w.labels) == 0 {
		return
	}
	w.labels = w.labels[:len(w.labels)-1]
}

// resolveLabel searches the label stack from innermost to outermost.
func (w *walker) resolveLabel(name string) (ast.Node, bool) {
	for i := len(w.labels) - 1; i >= 0; i-- {
		if w.labels[i].name == name {
			return w.labels[i].loop, true
		}
	}
	return nil, false
}

func (w *walker) VisitLabeledStmt(s *ast.LabeledStmt) {
	w.pushLabel(s.Label, s.Loop)
	w.analyzeStmt(s.Loop)
	w.popLabel()
}

// VisitBreakStmt validates `break ['label]`: illegal outside any loop,
// even nested inside a conditional; when labeled, the label must
// resolve on the current stack.
func (w *walker) VisitBreakStmt(s *ast.BreakStmt) {
	w.checkLoopControl(s.Token.Pos, s.Label, diagnostics.BreakOutsideLoop, diagnostics.UnknownLabel)
}

func (w *walker) VisitContinueStmt(s *ast.ContinueStmt) {
	w.checkLoopControl(s.Token.Pos, s.Label, diagnostics.ContinueOutsideLoop, diagnostics.UnknownLabel)
}

func (w *walker) checkLoopControl(pos token.Position, label string, outsideCode, unknownLabelCode diagnostics.ErrorCode) {
	if w.loopDepth == 0 {
		w.addError(diagnostics.NewError(outsideCode, pos, "break/continue used outside any loop"))
		return
	}
	if label == "" {
		return
	}
	if _, ok := w.resolveLabel(label); !ok {
		w.addError(diagnostics.NewError(unknownLabelCode, pos, "unknown label: '"+label).
			WithHint("declare the loop as 'label for... or 'label while..."))
	}
}

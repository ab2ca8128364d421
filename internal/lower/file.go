package lower

import (
	"rustpp/internal/ast"
	"rustpp/internal/doc"
)

// File lowers a whole source file: inner doc comments, inner attributes,
// then the item sequence, blank-line separated.
func (l *Lowerer) File(f *ast.File) (doc.Doc, error) {
	leading, err := leadingComments("File", f.Leading, allowLeadingFile)
	if err != nil {
		return nil, err
	}
	innerAttrs, err := l.innerAttrs("File", f.InnerAttrs)
	if err != nil {
		return nil, err
	}
	items, err := l.itemSequence(f.Items)
	if err != nil {
		return nil, err
	}
	return doc.Concat(leading, innerAttrs, items), nil
}

// Package testkit holds structural checks shared by front-end tests.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"arkoi/internal/ast"
	"arkoi/internal/source"
)

// CheckSpanInvariants verifies the span bookkeeping of a parsed file:
// the file node must carry a non-empty span inside the content bounds,
// every item span must be non-empty and nested in the file span, and
// the file span must cover the union of all item spans.
func CheckSpanInvariants(b *ast.Builder, fileID ast.FileID, sf *source.File) error {
	if b == nil || sf == nil {
		return fmt.Errorf("nil builder or source file")
	}
	root := b.Files.Get(fileID)
	if root == nil {
		return fmt.Errorf("no file node for id=%d", fileID)
	}
	if err := checkFileSpan(root.Span, sf); err != nil {
		return err
	}

	union, count, err := itemUnion(b, root, sf.ID)
	if err != nil {
		return err
	}
	if count > 0 && (union.Start < root.Span.Start || union.End > root.Span.End) {
		return fmt.Errorf("file span %v does not cover item union %v", root.Span, union)
	}
	return nil
}

func checkFileSpan(sp source.Span, sf *source.File) error {
	if sp.End <= sp.Start {
		return fmt.Errorf("file span is empty: %v", sp)
	}
	if sp.File != sf.ID {
		return fmt.Errorf("file span belongs to file %d, expected %d", sp.File, sf.ID)
	}
	size, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("content length overflows span arithmetic: %w", err)
	}
	if sp.End > size {
		return fmt.Errorf("file span ends at %d, content is only %d bytes", sp.End, size)
	}
	return nil
}

func itemUnion(b *ast.Builder, root *ast.File, want source.FileID) (source.Span, int, error) {
	var union source.Span
	for i, id := range root.Items {
		item := b.Items.Get(id)
		if item == nil {
			return union, i, fmt.Errorf("no item node for id=%d", id)
		}
		sp := item.Span
		switch {
		case sp.End <= sp.Start:
			return union, i, fmt.Errorf("item %d has an empty span: %v", i, sp)
		case sp.File != want:
			return union, i, fmt.Errorf("item %d spans file %d, expected %d", i, sp.File, want)
		case sp.Start < root.Span.Start || sp.End > root.Span.End:
			return union, i, fmt.Errorf("item span %v escapes file span %v", sp, root.Span)
		}
		if i == 0 {
			union = sp
		} else {
			union = union.Cover(sp)
		}
	}
	return union, len(root.Items), nil
}

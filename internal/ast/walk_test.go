package ast

import (
	"reflect"
	"testing"

	"arkoi/internal/source"
	"arkoi/internal/token"
)

// traceVisitor records which handlers ran, in order, while still walking
// children through the embedded Walker.
type traceVisitor struct {
	Walker
	trace *[]string
}

func (v *traceVisitor) log(s string) { *v.trace = append(*v.trace, s) }

func (v *traceVisitor) VisitLetItem(id ItemID) error {
	v.log("let-item")
	return v.Walker.VisitLetItem(id)
}

func (v *traceVisitor) VisitFnItem(id ItemID) error {
	v.log("fn-item")
	return v.Walker.VisitFnItem(id)
}

func (v *traceVisitor) VisitParam(id ParamID) error {
	v.log("param")
	return nil
}

func (v *traceVisitor) VisitBlockStmt(id StmtID) error {
	v.log("block")
	return v.Walker.VisitBlockStmt(id)
}

func (v *traceVisitor) VisitReturnStmt(id StmtID) error {
	v.log("return")
	return v.Walker.VisitReturnStmt(id)
}

func (v *traceVisitor) VisitBinaryExpr(id ExprID) error {
	v.log("binary")
	return v.Walker.VisitBinaryExpr(id)
}

func (v *traceVisitor) VisitLitExpr(id ExprID) error {
	v.log("lit")
	return nil
}

func (v *traceVisitor) VisitIdentExpr(id ExprID) error {
	v.log("ident")
	return nil
}

func ident(b *Builder, name string) ExprID {
	return b.NewIdentExpr(token.Token{Kind: token.Ident, Text: name})
}

func lit(b *Builder, v uint64) ExprID {
	return b.NewLitExpr(token.Token{Kind: token.IntLit, Value: token.IntValue(v)})
}

// Builds `fun add(a, b) { return a + 1; }` plus a top-level let and checks
// the pre-order, source-ordered traversal.
func TestWalkOrder(t *testing.T) {
	b := NewBuilder(Hints{})
	file := b.NewFile(source.Span{})

	letItem := b.NewLetItem(LetData{
		NameTok: token.Token{Kind: token.Ident, Text: "x"},
		Type:    b.NewTypeAnn(token.KwU8, source.Span{}),
		Value:   lit(b, 1),
	})
	b.PushItem(file, letItem)

	sum := b.NewBinaryExpr(token.Token{Kind: token.Plus}, ident(b, "a"), lit(b, 1), source.Span{})
	ret := b.NewReturnStmt(sum, source.Span{})
	body := b.NewBlockStmt([]StmtID{ret}, source.Span{})
	fnItem := b.NewFnItem(FnData{
		NameTok: token.Token{Kind: token.Ident, Text: "add"},
		Params: []ParamID{
			b.NewParam(ParamData{NameTok: token.Token{Kind: token.Ident, Text: "a"}}),
			b.NewParam(ParamData{NameTok: token.Token{Kind: token.Ident, Text: "b"}}),
		},
		Return: b.NewTypeAnn(token.KwU8, source.Span{}),
		Body:   body,
	})
	b.PushItem(file, fnItem)

	var trace []string
	v := &traceVisitor{trace: &trace}
	v.Walker = Walker{B: b, V: v}

	if err := WalkFile(b, v, file); err != nil {
		t.Fatal(err)
	}

	want := []string{
		"let-item", "lit",
		"fn-item", "param", "param", "block", "return", "binary", "ident", "lit",
	}
	if !reflect.DeepEqual(trace, want) {
		t.Errorf("trace = %v\nwant    %v", trace, want)
	}
}

func TestWalkGroupUnwraps(t *testing.T) {
	b := NewBuilder(Hints{})
	inner := lit(b, 7)
	group := b.NewGroupExpr(inner, source.Span{})

	var trace []string
	v := &traceVisitor{trace: &trace}
	v.Walker = Walker{B: b, V: v}

	if err := AcceptExpr(b, v, group); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(trace, []string{"lit"}) {
		t.Errorf("trace = %v", trace)
	}
}

func TestWalkBareLetSkipsMissingInitializer(t *testing.T) {
	b := NewBuilder(Hints{})
	file := b.NewFile(source.Span{})
	b.PushItem(file, b.NewLetItem(LetData{
		NameTok: token.Token{Kind: token.Ident, Text: "x"},
		Value:   NoExprID,
	}))

	var trace []string
	v := &traceVisitor{trace: &trace}
	v.Walker = Walker{B: b, V: v}

	if err := WalkFile(b, v, file); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(trace, []string{"let-item"}) {
		t.Errorf("trace = %v", trace)
	}
}

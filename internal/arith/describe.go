package arith

import (
	"fmt"

	"github.com/ib-77/ropmatch/pkg/rop"
	"github.com/ib-77/ropmatch/pkg/rop/erased"
	"github.com/ib-77/ropmatch/pkg/rop/kind"
	"github.com/ib-77/ropmatch/pkg/rop/pattern"
)

func describer[T Number]() *pattern.Matcher[rop.Result[T, erased.Error], string] {
	return rop.CasesOver(kind.Builtin,
		rop.OnValue[erased.Error](func(v T) string { return fmt.Sprint(v) }),
		rop.OnKind[T](func(kind.OutOfRange) string { return "the arguments out of range" }),
		rop.OnKind[T](func(kind.Range) string { return "the result out of range" }),
		rop.OnKind[T](func(kind.DivideByZero) string { return "division by zero" }),
		rop.OnCategory[T](kind.LogicErrorCategory, func(e erased.Error) string { return "logic error: " + e.Error() }),
		rop.OnCategory[T](kind.RuntimeErrorCategory, func(e erased.Error) string { return "runtime error: " + e.Error() }),
		rop.OnEmpty[T](func() string { return "failed without an error value" }),
	)
}

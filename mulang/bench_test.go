package mulang

import "testing"

func BenchmarkAdd(b *testing.B) {
	for b.Loop() {
		if _, err := Add.Apply(20, 30); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMul(b *testing.B) {
	for b.Loop() {
		if _, err := Mul.Apply(12, 12); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkExp(b *testing.B) {
	for b.Loop() {
		if _, err := Exp.Apply(2, 8); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMu(b *testing.B) {
	m := Mu(Comp(Neq, Proj(0), Const(16)))
	for b.Loop() {
		if _, err := m.Apply(); err != nil {
			b.Fatal(err)
		}
	}
}

package digits

import "strings"

// spigot produces the first n digits of π with the Rabinowitz–Wagon
// bounded spigot. Two guard digits are computed and dropped so that a
// pending run of nines cannot corrupt the tail.
func spigot(n int) string {
	want := n + 2
	size := want*10/3 + 1
	a := make([]int, size)
	for i := range a {
		a[i] = 2
	}

	var out strings.Builder
	out.Grow(want + 1)
	nines, predigit := 0, 0
	emit := func(d int) { out.WriteByte(byte('0' + d)) }

	for j := 0; j < want; j++ {
		q := 0
		for i := size; i > 0; i-- {
			x := 10*a[i-1] + q*i
			a[i-1] = x % (2*i - 1)
			q = x / (2*i - 1)
		}
		a[0] = q % 10
		q /= 10

		switch q {
		case 9:
			nines++
		case 10:
			emit(predigit + 1)
			for ; nines > 0; nines-- {
				emit(0)
			}
			predigit = 0
		default:
			emit(predigit)
			predigit = q
			for ; nines > 0; nines-- {
				emit(9)
			}
		}
	}
	emit(predigit)

	// The first emitted digit is the zero seed of predigit.
	return out.String()[1 : n+1]
}

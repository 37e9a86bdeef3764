package hashtable

// Hasher maps a key to a slot in a table of the given capacity.
type Hasher func(key string, capacity int) int

// Polynomial returns a rolling hash value = key[i] + base*value over every
// stride-th byte of the key, reduced modulo the capacity. Arithmetic wraps
// at 64 bits.
func Polynomial(base uint64, stride int) Hasher {
	if stride < 1 {
		stride = 1
	}
	return func(key string, capacity int) int {
		var v uint64
		for i := 0; i < len(key); i += stride {
			v = uint64(key[i]) + base*v
		}
		return int(v % uint64(capacity))
	}
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

func nextPrime(n int) int {
	for !isPrime(n) {
		n++
	}
	return n
}

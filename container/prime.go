package container

// IsPrime reports whether n is prime by trial division over odd factors up
// to the square root. Table sizes stay small enough that anything fancier
// would be wasted.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for i := 3; i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// NextPrime returns the smallest prime greater than or equal to n.
func NextPrime(n int) int {
	for !IsPrime(n) {
		n++
	}
	return n
}

package statlib

import (
	"math"

	"github.com/sibench-rng/rngbattery/internal/prng"
)

// Reference is an in-repo stand-in for the external TestU01-style library.
// Each method draws real output from gen, reduces it to a single chi-square
// (or walk) statistic the way the family it's named after does, and maps
// that statistic to a p-value. It exists so the dispatcher, capability
// boundary and report model can be exercised end to end without a real
// external dependency; a production build would replace it with one that
// calls into the actual library through the legacy-call bridge.
type Reference struct{}

var _ Library = Reference{}

// BirthdaySpacings counts collisions among n values drawn from a space of d
// cells, repeated t times, and compares the observed collision count to the
// Poisson-birthday-problem expectation via chi-square — the general shape
// of smarsa_BirthdaySpacings (original_source/testu01_mt.cpp).
func (Reference) BirthdaySpacings(gen prng.Generator, n, r int, d int64, t int) float64 {
	if n < 2 || t < 1 {
		return 1
	}
	expected := float64(n) * float64(n-1) / 2 / float64(d)
	var total float64
	for trial := 0; trial < t; trial++ {
		cells := make(map[int64]int, n)
		for i := 0; i < n; i++ {
			v := int64(gen.U01() * float64(d))
			cells[v]++
		}
		collisions := 0
		for _, c := range cells {
			if c > 1 {
				collisions += c - 1
			}
		}
		diff := float64(collisions) - expected
		total += diff * diff / math.Max(expected, 1e-12)
	}
	return chiSquarePValue(total, t)
}

// CollisionOver counts how many of t independent trials of n draws over d
// cells produce at least one collision, and compares against the expected
// collision rate — modelled on smarsa_CollisionOver.
func (Reference) CollisionOver(gen prng.Generator, n, r int, d int64, t int) float64 {
	if n < 2 || t < 1 {
		return 1
	}
	pCollision := 1 - math.Exp(-float64(n)*float64(n-1)/2/float64(d))
	observed := 0
	for trial := 0; trial < t; trial++ {
		seen := make(map[int64]bool, n)
		collided := false
		for i := 0; i < n; i++ {
			v := int64(gen.U01() * float64(d))
			if seen[v] {
				collided = true
			}
			seen[v] = true
		}
		if collided {
			observed++
		}
	}
	expected := pCollision * float64(t)
	diff := float64(observed) - expected
	variance := math.Max(expected*(1-pCollision), 1e-12)
	stat := diff * diff / variance
	return chiSquarePValue(stat, 1)
}

// Gap counts runs of consecutive draws falling outside [alpha, beta) before
// one lands inside it, bins the run lengths, and chi-square tests the
// distribution against the geometric law the gap test expects — the shape
// of sknuth/svaria gap-style tests.
func (Reference) Gap(gen prng.Generator, n, r int, alpha, beta float64) float64 {
	if n < 10 {
		return 1
	}
	p := beta - alpha
	if p <= 0 || p >= 1 {
		return 1
	}
	const maxBin = 20
	counts := make([]int, maxBin+1)
	gap := 0
	draws := 0
	for draws < n {
		u := gen.U01()
		draws++
		if u >= alpha && u < beta {
			if gap > maxBin {
				gap = maxBin
			}
			counts[gap]++
			gap = 0
		} else {
			gap++
		}
	}
	total := 0
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return 1
	}
	var stat float64
	for k := 0; k <= maxBin; k++ {
		var pk float64
		if k < maxBin {
			pk = p * math.Pow(1-p, float64(k))
		} else {
			pk = math.Pow(1-p, float64(k))
		}
		expected := pk * float64(total)
		if expected < 1e-9 {
			continue
		}
		diff := float64(counts[k]) - expected
		stat += diff * diff / expected
	}
	return chiSquarePValue(stat, maxBin)
}

// MatrixRank builds n random l×k bit matrices from gen's raw bit stream,
// sums the squared shortfall of each matrix's GF(2) rank below full rank
// min(l, k), and maps that sum to a p-value with n degrees of freedom — the
// shape of smarsa_MatrixRank.
func (Reference) MatrixRank(gen prng.Generator, n, r, s, l, k int) float64 {
	if l < 1 || k < 1 || n < 1 {
		return 1
	}
	rows := make([]uint64, l)
	var stat float64
	for trial := 0; trial < n; trial++ {
		for i := 0; i < l; i++ {
			var word uint64
			bitsLeft := k
			for bitsLeft > 0 {
				take := bitsLeft
				if take > 32 {
					take = 32
				}
				word = (word << uint(take)) | uint64(gen.Bits32()>>(32-take))
				bitsLeft -= take
			}
			rows[i] = word
		}
		rank := gf2Rank(rows, k)
		full := l
		if k < full {
			full = k
		}
		diff := float64(rank - full)
		stat += diff * diff
	}
	return chiSquarePValue(stat+1, n)
}

func gf2Rank(rows []uint64, cols int) int {
	m := append([]uint64(nil), rows...)
	rank := 0
	for col := cols - 1; col >= 0 && rank < len(m); col-- {
		pivot := -1
		for r := rank; r < len(m); r++ {
			if m[r]&(1<<uint(col)) != 0 {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			continue
		}
		m[rank], m[pivot] = m[pivot], m[rank]
		for r := 0; r < len(m); r++ {
			if r != rank && m[r]&(1<<uint(col)) != 0 {
				m[r] ^= m[rank]
			}
		}
		rank++
	}
	return rank
}

// RandomWalk1 simulates n independent random walks of length s over {-1,+1}
// steps and reports the five summary p-values TestU01 names H, M, J, R, C —
// see GetPValue_Walk in original_source/testu01_mt.cpp. Each statistic here
// is a simplified real reduction of the corresponding walk property
// (max height reached, time at max, number of returns to origin, range,
// number of sign changes), chi-square tested against its large-sample normal
// approximation.
func (Reference) RandomWalk1(gen prng.Generator, n, r, s int, l0, l1 int64) RandomWalkPValues {
	if n < 1 || s < 1 {
		return RandomWalkPValues{1, 1, 1, 1, 1}
	}
	var sumH, sumM, sumJ, sumR, sumC float64
	for trial := 0; trial < n; trial++ {
		pos := 0
		maxPos, minPos := 0, 0
		timeAtMax := 0
		visits := map[int]int{0: 1}
		signChanges := 0
		lastSign := 0
		for step := 0; step < s; step++ {
			if gen.U01() < 0.5 {
				pos--
			} else {
				pos++
			}
			if pos > maxPos {
				maxPos = pos
				timeAtMax = step + 1
			}
			if pos < minPos {
				minPos = pos
			}
			visits[pos]++
			sign := 1
			if pos < 0 {
				sign = -1
			} else if pos == 0 {
				sign = 0
			}
			if sign != 0 && lastSign != 0 && sign != lastSign {
				signChanges++
			}
			if sign != 0 {
				lastSign = sign
			}
		}
		returns := visits[0] - 1
		expectedMax := math.Sqrt(float64(s)) * 0.7979
		expectedRange := float64(maxPos - minPos)
		sumH += square((float64(maxPos) - expectedMax) / math.Max(expectedMax, 1))
		sumM += square((float64(timeAtMax) - float64(s)/2) / math.Max(float64(s)/2, 1))
		sumJ += square((float64(returns) - math.Sqrt(float64(s))) / math.Max(math.Sqrt(float64(s)), 1))
		sumR += square((expectedRange - math.Sqrt(float64(s))*1.6) / math.Max(math.Sqrt(float64(s)), 1))
		sumC += square((float64(signChanges) - float64(s)/4) / math.Max(float64(s)/4, 1))
	}
	return RandomWalkPValues{
		H: chiSquarePValue(sumH, n),
		M: chiSquarePValue(sumM, n),
		J: chiSquarePValue(sumJ, n),
		R: chiSquarePValue(sumR, n),
		C: chiSquarePValue(sumC, n),
	}
}

func square(x float64) float64 { return x * x }

// HammingWeight draws n 32-bit blocks (one Bits32 call each) from gen and
// chi-square tests the popcount distribution against the expected
// binomial(32, 1/2) law — the shape of sstring style Hamming-weight tests.
// The block length is always 32 bits; l is only checked to be positive.
func (Reference) HammingWeight(gen prng.Generator, n, r int, l int64) float64 {
	if n < 1 || l < 1 {
		return 1
	}
	bins := make([]int, 33)
	for i := 0; i < n; i++ {
		w := popcount32(gen.Bits32())
		bins[w]++
	}
	mean := 16.0
	var stat float64
	for w, c := range bins {
		diff := float64(w) - mean
		expected := float64(n) * binomialPMF(32, 16, w)
		_ = diff
		if expected < 1e-9 {
			continue
		}
		d := float64(c) - expected
		stat += d * d / expected
	}
	return chiSquarePValue(stat, 32)
}

func binomialPMF(nTrials, mean, k int) float64 {
	logCoef := logChoose(nTrials, k)
	p := 0.5
	return math.Exp(logCoef + float64(k)*math.Log(p) + float64(nTrials-k)*math.Log(1-p))
}

func logChoose(n, k int) float64 {
	return lgamma(n+1) - lgamma(k+1) - lgamma(n-k+1)
}

func lgamma(n int) float64 {
	v, _ := math.Lgamma(float64(n))
	return v
}

// Fourier3 applies a naive discrete Fourier transform to k sign-converted
// bits drawn s times from gen and chi-square tests how many of the first
// quarter of frequency magnitudes exceed the expected 95th-percentile
// threshold — the shape of sstring_Fourier3.
func (Reference) Fourier3(gen prng.Generator, k, r, s int) float64 {
	if k < 8 {
		return 1
	}
	threshold := math.Sqrt(2.995732274 * float64(k))
	expectedExceed := 0.05 * float64(k) / 4
	var total float64
	for trial := 0; trial < s; trial++ {
		bitsSeq := make([]float64, k)
		for i := 0; i < k; i++ {
			if gen.U01() < 0.5 {
				bitsSeq[i] = -1
			} else {
				bitsSeq[i] = 1
			}
		}
		exceed := 0
		for f := 1; f <= k/4; f++ {
			var re, im float64
			for i := 0; i < k; i++ {
				angle := -2 * math.Pi * float64(f) * float64(i) / float64(k)
				re += bitsSeq[i] * math.Cos(angle)
				im += bitsSeq[i] * math.Sin(angle)
			}
			mag := math.Sqrt(re*re + im*im)
			if mag > threshold {
				exceed++
			}
		}
		diff := float64(exceed) - expectedExceed
		total += diff * diff / math.Max(expectedExceed, 1e-9)
	}
	return chiSquarePValue(total, s)
}

// LinearComplexity runs the Berlekamp-Massey algorithm over n bit-streams
// of length s each drawn from gen, and chi-square tests the observed
// linear-complexity distribution against its known large-n mean (s/2) —
// the shape of scomp_LinearComp.
func (Reference) LinearComplexity(gen prng.Generator, n, r, s int) float64 {
	if s < 8 {
		return 1
	}
	var total float64
	expected := float64(s) / 2
	for trial := 0; trial < n; trial++ {
		bitsSeq := make([]int, s)
		for i := 0; i < s; i++ {
			if gen.U01() < 0.5 {
				bitsSeq[i] = 0
			} else {
				bitsSeq[i] = 1
			}
		}
		complexity := berlekampMassey(bitsSeq)
		diff := float64(complexity) - expected
		variance := expected / 2
		total += diff * diff / math.Max(variance, 1e-9)
	}
	return chiSquarePValue(total, n)
}

// berlekampMassey returns the linear complexity of a binary sequence over GF(2).
func berlekampMassey(seq []int) int {
	n := len(seq)
	c := make([]int, n+1)
	b := make([]int, n+1)
	c[0], b[0] = 1, 1
	l, m := 0, -1
	for i := 0; i < n; i++ {
		d := seq[i]
		for j := 1; j <= l; j++ {
			d ^= c[j] & seq[i-j]
		}
		if d == 0 {
			continue
		}
		t := append([]int(nil), c...)
		shift := i - m
		for j := 0; j+shift <= n; j++ {
			c[j+shift] ^= b[j]
		}
		if l <= i/2 {
			l = i + 1 - l
			m = i
			b = t
		}
	}
	return l
}

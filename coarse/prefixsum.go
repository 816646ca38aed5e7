package coarse

// inclusivePrefixSum computes, for each index i, the sum of counts[0..i]
// inclusive. On a real device this is the Hillis-Steele scan the shader
// runs across WG_SIZE lanes with a barrier before and after each of the
// log2(WG_SIZE) steps (spec ch.9, "Prefix sums"); on CPU a single
// sequential pass computes the identical result, since no lane in this
// simulated workgroup actually runs concurrently with another (spec
// ch.5.1).
func inclusivePrefixSum(counts []uint32) []uint32 {
	out := make([]uint32, len(counts))
	var running uint32
	for i, c := range counts {
		running += c
		out[i] = running
	}
	return out
}

// findBucket performs the binary-search ladder the shader uses to map a
// flat index into the bucket (partition, or fanned-out draw object) that
// owns it: the smallest index i such that prefixSumInclusive[i] > ix
// (spec ch.4.1, "binary-search"; ch.9, "Prefix sums").
func findBucket(prefixSumInclusive []uint32, ix uint32) int {
	lo, hi := 0, len(prefixSumInclusive)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if prefixSumInclusive[mid] > ix {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

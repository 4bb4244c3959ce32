package accel

// byteFrequencies holds empirical frequency ranks for bytes in typical
// text/source/binary corpora; lower rank means rarer, and rarer bytes
// make more selective anchors for substring search. Ported from the
// teacher's simd/byte_frequencies.go, which in turn cites Rust's
// `memchr` crate as the source of the approach.
var byteFrequencies = [256]byte{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 1, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	255, 60, 140, 50, 40, 35, 30, 160, 130, 130, 80, 55, 200, 140, 210, 100,
	180, 190, 170, 150, 140, 140, 130, 120, 120, 120, 150, 100, 70, 160, 70, 50,
	25, 120, 80, 90, 85, 130, 75, 70, 80, 115, 30, 35, 90, 85, 100, 105,
	80, 15, 100, 110, 115, 70, 45, 55, 20, 50, 10, 90, 60, 90, 20, 110,
	30, 225, 140, 170, 165, 245, 135, 130, 150, 200, 25, 65, 175, 155, 195, 205,
	145, 15, 195, 200, 215, 150, 75, 95, 45, 120, 20, 85, 40, 85, 15, 0,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
}

// selectRareByte scans needle and returns its rarest byte and that
// byte's index, used to anchor Find/RFind's candidate search on the
// most selective byte available rather than always the first.
func selectRareByte(needle []byte) (rareByte byte, index int) {
	rareByte = needle[0]
	minRank := byteFrequencies[rareByte]
	for i := 1; i < len(needle); i++ {
		b := needle[i]
		if r := byteFrequencies[b]; r < minRank {
			rareByte, index, minRank = b, i, r
		}
	}
	return rareByte, index
}

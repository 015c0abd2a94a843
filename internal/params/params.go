// Package params holds the fixed CSIDH parameter sets — the prime list, the
// field modulus derived from it, and the handful of constants the group
// action and the supersingularity test need precomputed rather than
// recomputed on every call.
package params

import (
	"encoding/hex"
	"fmt"

	"github.com/cronokirby/saferith"
)

// Set is a CSIDH parameter set: an ordered list of distinct odd primes, the
// field modulus p = 4·∏lis − 1, and the constants derived from p that the
// walk and the supersingularity test consume directly.
type Set struct {
	// Name identifies the set in error messages and test output.
	Name string
	// Lis is the ordered list of small odd primes ℓ_1, ..., ℓ_N.
	Lis []uint64
	// P is the field modulus, 4·∏Lis − 1.
	P *saferith.Modulus
	// PMinus1Over2 is (p-1)/2, the exponent used by the Euler-criterion
	// quadratic-residue test in Curve.Lift.
	PMinus1Over2 *saferith.Nat
	// Inverse4 is 4⁻¹ mod p, used to derive A24 = (A+2)·4⁻¹.
	Inverse4 *saferith.Nat
	// Sqrt4P is ⌈4·√p⌉, the threshold the supersingularity test's
	// accumulated cofactor must exceed to accept a curve.
	Sqrt4P *saferith.Nat
	// ByteLen is the big-endian fixed width, in bytes, of an encoded Fp
	// element for this parameter set (the byte-size of p, rounded up).
	ByteLen int
}

// N is the number of primes in the parameter set.
func (s *Set) N() int { return len(s.Lis) }

func mustBytes(hexDigits string) []byte {
	b, err := hex.DecodeString(hexDigits)
	if err != nil {
		panic(fmt.Sprintf("params: invalid embedded hex constant: %v", err))
	}
	return b
}

func mustNat(hexDigits string) *saferith.Nat {
	return new(saferith.Nat).SetBytes(mustBytes(hexDigits))
}

func mustModulus(hexDigits string) *saferith.Modulus {
	return saferith.ModulusFromBytes(mustBytes(hexDigits))
}

// New constructs a custom parameter set from its four precomputed values.
//
// Validity of pMinus1Over2, inverse4 and sqrt4P with respect to p and lis
// is the caller's responsibility and is not checked here. Passing
// inconsistent values yields a Set that silently computes wrong results
// rather than panicking.
func New(name string, lis []uint64, p, pMinus1Over2, inverse4, sqrt4P []byte, byteLen int) *Set {
	return &Set{
		Name:         name,
		Lis:          append([]uint64(nil), lis...),
		P:            saferith.ModulusFromBytes(p),
		PMinus1Over2: new(saferith.Nat).SetBytes(pMinus1Over2),
		Inverse4:     new(saferith.Nat).SetBytes(inverse4),
		Sqrt4P:       new(saferith.Nat).SetBytes(sqrt4P),
		ByteLen:      byteLen,
	}
}

// CSIDH512 is the standard 74-prime, 512-bit parameter set.
var CSIDH512 = &Set{
	Name: "CSIDH-512",
	Lis: []uint64{
		3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67,
		71, 73, 79, 83, 89, 97, 101, 103, 107, 109, 113, 127, 131, 137, 139,
		149, 151, 157, 163, 167, 173, 179, 181, 191, 193, 197, 199, 211, 223,
		227, 229, 233, 239, 241, 251, 257, 263, 269, 271, 277, 281, 283, 293,
		307, 311, 313, 317, 331, 337, 347, 349, 353, 359, 367, 373, 587,
	},
	P: mustModulus("65b48e8f740f89bffc8ab0d15e3e4c4ab42d083aedc88c425afbfcc69322c9cda7aac6c567f35507516730cc1f0b4f25c2721bf457aca8351b81b90533c6c87b"),
	PMinus1Over2: mustNat("32da4747ba07c4dffe455868af1f26255a16841d76e446212d7dfe63499164e6d3d56362b3f9aa83a8b398660f85a792e1390dfa2bd6541a8dc0dc8299e3643d"),
	Inverse4:     mustNat("196d23a3dd03e26fff22ac34578f9312ad0b420ebb72231096beff31a4c8b27369eab1b159fcd541d459cc3307c2d3c9709c86fd15eb2a0d46e06e414cf1b21f"),
	Sqrt4P:       mustNat("02856f1399d91d6592142b9541e59682cd38d0cd95f8636a5617895e71e1a20b40"),
	ByteLen:      64,
}

// CSIDH1024 is the standard 130-prime, 1024-bit parameter set.
var CSIDH1024 = &Set{
	Name: "CSIDH-1024",
	Lis: []uint64{
		3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67,
		71, 73, 79, 83, 89, 97, 101, 103, 107, 109, 113, 127, 131, 137, 139,
		149, 151, 157, 163, 167, 173, 179, 181, 191, 193, 197, 199, 211, 223,
		227, 229, 233, 239, 241, 251, 257, 263, 269, 271, 277, 281, 283, 293,
		307, 311, 313, 317, 331, 337, 347, 349, 353, 359, 367, 373, 379, 383,
		389, 397, 401, 409, 419, 421, 431, 433, 439, 443, 449, 457, 461, 463,
		467, 479, 487, 491, 499, 503, 509, 521, 523, 541, 547, 557, 563, 569,
		571, 577, 587, 593, 599, 601, 607, 613, 617, 619, 631, 641, 643, 647,
		653, 659, 661, 673, 677, 683, 691, 701, 709, 719, 727, 863, 947,
	},
	P: mustModulus("10cb223ae097cf1a52167028f26d8f86d0f0a110eb0ae742b20f534e663ac13de0d82f6c8fa15f6f21aa2be3e1288159e4011af24ff7c76c89be864a3160c6f02f0d257646424a34623c932d5d74a5c02e918279554887b195464e27f705ddda97ccd65fb43ab68a754ddd05e9766449e1a607eb0c632468597d98552f29c18b"),
	PMinus1Over2: mustNat("0865911d704be78d290b38147936c7c368785088758573a15907a9a7331d609ef06c17b647d0afb790d515f1f09440acf2008d7927fbe3b644df432518b06378178692bb2321251a311e4996aeba52e01748c13caaa443d8caa32713fb82eeed4be66b2fda1d5b453aa6ee82f4bb3224f0d303f5863192342cbecc2a9794e0c5"),
	Inverse4:     mustNat("0432c88eb825f3c694859c0a3c9b63e1b43c28443ac2b9d0ac83d4d3998eb04f78360bdb23e857dbc86a8af8f84a2056790046bc93fdf1db226fa1928c5831bc0bc3495d9190928d188f24cb575d29700ba4609e555221ec65519389fdc17776a5f33597ed0eada29d5377417a5d9912786981fac318c91a165f66154bca7063"),
	Sqrt4P:       mustNat("01064567fe71623dd3d0453e10c2330470580e0f1f224d70507fc43905ea5cc3705f413e8c164007037e08e352ae20804b82c7ef4aff3cfc5df5a41fa2c58c6fd4"),
	ByteLen:      128,
}

// CSIDH1792 is the standard 201-prime, 1792-bit parameter set. Unlike the
// other two, its prime list starts at ℓ_1=37 rather than 3.
var CSIDH1792 = &Set{
	Name: "CSIDH-1792",
	Lis: []uint64{
		37, 41, 43, 47, 53, 59, 61, 67, 71, 73, 79, 83, 89, 97, 101, 103, 107,
		109, 113, 127, 131, 137, 139, 149, 151, 157, 163, 167, 173, 179, 181,
		191, 193, 197, 199, 211, 223, 227, 229, 233, 239, 241, 251, 257, 263,
		269, 271, 277, 281, 283, 293, 307, 311, 313, 317, 331, 337, 347, 349,
		353, 359, 367, 373, 379, 383, 389, 397, 401, 409, 419, 421, 431, 433,
		439, 443, 449, 457, 461, 463, 467, 479, 487, 491, 499, 503, 509, 521,
		523, 541, 547, 557, 563, 569, 571, 577, 587, 593, 599, 601, 607, 613,
		617, 619, 631, 641, 643, 647, 653, 659, 661, 673, 677, 683, 691, 701,
		709, 719, 727, 733, 739, 743, 751, 757, 761, 769, 773, 787, 797, 809,
		811, 821, 823, 827, 829, 839, 853, 857, 859, 863, 877, 881, 883, 887,
		907, 911, 919, 929, 937, 941, 947, 953, 967, 971, 977, 983, 991, 997,
		1009, 1013, 1019, 1021, 1031, 1033, 1039, 1049, 1051, 1061, 1063, 1069,
		1087, 1091, 1093, 1097, 1103, 1109, 1117, 1123, 1129, 1151, 1153, 1163,
		1171, 1181, 1187, 1193, 1201, 1213, 1217, 1223, 1229, 1231, 1237, 1249,
		1259, 1277, 1279, 1283, 1289, 1291, 1301, 1657,
	},
	P: mustModulus("c834b95a843e9915f18fa61bbaec899a64eeaa69a5fca02506be588b823f288602d1bf582cbe08dcbb99675546a301a13010d40ed23489b890015d7e1b44024e356cd78518b16005a4cceac17964448ac53435e28dc76c933d75e319c1fda37dc8c8bf7f17106def3b9048648cfa7449e65e089ae1fa3ab5c335ff012c2bd0c6e98885c18458f6ad95e8a142f951cd01806ddf63e695c7041e69dd2da6d48fc2e3a67ee40d039878aaea7abfa49b414968a285a57144a5210cbca971107497ada777973c3d3173f16f9412e3d829d25b17ab71542c1d82fcc534b72aabb11be3"),
	PMinus1Over2: mustNat("641a5cad421f4c8af8c7d30ddd7644cd32775534d2fe5012835f2c45c11f94430168dfac165f046e5dccb3aaa35180d098086a07691a44dc4800aebf0da201271ab66bc28c58b002d2667560bcb22245629a1af146e3b6499ebaf18ce0fed1bee4645fbf8b8836f79dc82432467d3a24f32f044d70fd1d5ae19aff809615e86374c442e0c22c7b56caf450a17ca8e680c036efb1f34ae3820f34ee96d36a47e171d33f720681cc3c55753d5fd24da0a4b45142d2b8a25290865e54b8883a4bd6d3bbcb9e1e98b9f8b7ca0971ec14e92d8bd5b8aa160ec17e629a5b9555d88df1"),
	Inverse4:     mustNat("320d2e56a10fa6457c63e986eebb2266993baa9a697f280941af9622e08fca2180b46fd60b2f82372ee659d551a8c0684c043503b48d226e2400575f86d100938d5b35e1462c580169333ab05e591122b14d0d78a371db24cf5d78c6707f68df72322fdfc5c41b7bcee41219233e9d1279978226b87e8ead70cd7fc04b0af431ba62217061163dab657a2850be547340601b77d8f9a571c1079a774b69b523f0b8e99fb90340e61e2aba9eafe926d0525a28a1695c512948432f2a5c441d25eb69dde5cf0f4c5cfc5be504b8f60a7496c5eadc550b0760bf314d2dcaaaec46f9"),
	Sqrt4P:       mustNat("038990052e73e9fb137778a2c8553d92bbe1abf6a3dbc42958ab43df8593c5c3a283e612ce65ab290281ee56969fe3a0cd77a34926f2b21475b400ad2da4aa23668cf988de4f99ff9aa0ab4bca581ea99cfdf4a7cf03d270dbc49ccbb20d94d84eae8c9ed15e611d72f0bd5782773c19f7"),
	ByteLen:      224,
}

//go:build !amd64

package cpuid

// cpuidCount is only meaningful on amd64. Other architectures see
// zeroed registers, which classify as unrecognised.
func cpuidCount(leaf, subleaf uint32) (eax, ebx, ecx, edx uint32) {
	return 0, 0, 0, 0
}

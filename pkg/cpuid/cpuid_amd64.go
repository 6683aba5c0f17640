//go:build amd64

package cpuid

// cpuidCount executes the CPUID instruction with the given leaf (EAX)
// and subleaf (ECX) selectors on the calling core.
// Implemented in cpuid_amd64.s.
func cpuidCount(leaf, subleaf uint32) (eax, ebx, ecx, edx uint32)

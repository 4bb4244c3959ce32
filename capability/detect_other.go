//go:build !amd64 && !arm64

package capability

func detectX86() Tier { return 0 }
func detectARM() Tier { return 0 }

package images

import (
	"crypto/md5"
	"fmt"

	"gocv.io/x/gocv"
)

// Checksum hashes the pixel bytes of a Mat so two frames can be compared for
// equality without holding onto a copy.
//
// Arguments:
//   - mat: The Mat to hash.
//
// Returns:
//   - A hex-encoded MD5 checksum string, or "empty" for an empty Mat.
//
// Example:
//
//	before := Checksum(frame)
//	detector.Detect(&frame)
//	changed := before != Checksum(frame)
func Checksum(mat gocv.Mat) string {
	if mat.Empty() {
		return "empty"
	}

	hash := md5.New()
	hash.Write(mat.ToBytes())
	return fmt.Sprintf("%x", hash.Sum(nil))
}

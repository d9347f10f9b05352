package dvss_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestDVSSSuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "dvss Suite")
}

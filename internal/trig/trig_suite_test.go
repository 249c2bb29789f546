package trig_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestTrigProperties(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Trig Engine Properties")
}

package predecode_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/armdec/predecode"
)

var _ = Describe("Config", func() {
	var tempDir string

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "predecode-config-test")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		_ = os.RemoveAll(tempDir)
	})

	It("should provide a valid default", func() {
		config := predecode.DefaultConfig()

		Expect(config.Validate()).To(Succeed())
		Expect(config.LineBytes()).To(Equal(32))
		Expect(config.Capacity()).To(Equal(2048))
	})

	It("should round-trip through a file", func() {
		path := filepath.Join(tempDir, "predecode.json")
		config := &predecode.Config{Sets: 16, Ways: 2, LineWords: 4}

		Expect(config.SaveConfig(path)).To(Succeed())

		loaded, err := predecode.LoadConfig(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded).To(Equal(config))
	})

	It("should keep defaults for missing fields", func() {
		path := filepath.Join(tempDir, "partial.json")
		Expect(os.WriteFile(path, []byte(`{"ways": 8}`), 0644)).To(Succeed())

		loaded, err := predecode.LoadConfig(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded.Ways).To(Equal(8))
		Expect(loaded.Sets).To(Equal(64))
		Expect(loaded.LineWords).To(Equal(8))
	})

	It("should fail on a missing file", func() {
		_, err := predecode.LoadConfig(filepath.Join(tempDir, "nope.json"))
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("failed to read"))
	})

	It("should fail on malformed JSON", func() {
		path := filepath.Join(tempDir, "bad.json")
		Expect(os.WriteFile(path, []byte(`{"sets": `), 0644)).To(Succeed())

		_, err := predecode.LoadConfig(path)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("failed to parse"))
	})

	DescribeTable("should reject bad geometry",
		func(config predecode.Config, msg string) {
			err := config.Validate()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring(msg))
		},
		Entry("zero sets", predecode.Config{Sets: 0, Ways: 1, LineWords: 1}, "sets"),
		Entry("zero ways", predecode.Config{Sets: 1, Ways: 0, LineWords: 1}, "ways"),
		Entry("zero line words", predecode.Config{Sets: 1, Ways: 1, LineWords: 0}, "line_words"),
		Entry("odd line words", predecode.Config{Sets: 1, Ways: 1, LineWords: 3}, "power of two"),
	)
})

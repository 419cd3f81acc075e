package config_test

import (
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nissynicolas/sdlc-jira-extractor-agent/core/config"
)

var configEnvVars = []string{
	"EXTRACTOR_ENV",
	"PORT",
	"JIRA_SERVER",
	"JIRA_EMAIL",
	"JIRA_API_TOKEN",
	"JIRA_ACCEPTANCE_CRITERIA_FIELD",
	"JIRA_MAX_SEARCH_RESULTS",
	"OTEL_EXPORTER_OTLP_ENDPOINT",
}

var _ = Describe("Load", func() {
	BeforeEach(func() {
		for _, key := range configEnvVars {
			Expect(os.Unsetenv(key)).To(Succeed())
		}
		// Skip .env loading so tests only see the process environment.
		Expect(os.Setenv("EXTRACTOR_ENV", "test")).To(Succeed())
	})

	AfterEach(func() {
		for _, key := range configEnvVars {
			Expect(os.Unsetenv(key)).To(Succeed())
		}
	})

	Context("with a complete credential triple", func() {
		BeforeEach(func() {
			Expect(os.Setenv("JIRA_SERVER", "https://example.atlassian.net")).To(Succeed())
			Expect(os.Setenv("JIRA_EMAIL", "dev@example.com")).To(Succeed())
			Expect(os.Setenv("JIRA_API_TOKEN", "token-123")).To(Succeed())
		})

		It("loads the triple", func() {
			cfg, err := config.Load()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Jira.ServerURL).To(Equal("https://example.atlassian.net"))
			Expect(cfg.Jira.Email).To(Equal("dev@example.com"))
			Expect(cfg.Jira.APIToken).To(Equal("token-123"))
		})

		It("applies defaults for the ambient fields", func() {
			cfg, err := config.Load()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Port).To(Equal("8000"))
			Expect(cfg.Jira.AcceptanceCriteriaField).To(Equal("customfield_10001"))
			Expect(cfg.Jira.MaxSearchResults).To(Equal(50))
			Expect(cfg.OTel.Enabled()).To(BeFalse())
		})

		It("prefixes https:// when the server is a bare host", func() {
			Expect(os.Setenv("JIRA_SERVER", "example.atlassian.net")).To(Succeed())

			cfg, err := config.Load()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Jira.ServerURL).To(Equal("https://example.atlassian.net"))
		})

		It("keeps an explicit http:// scheme", func() {
			Expect(os.Setenv("JIRA_SERVER", "http://jira.internal:8080")).To(Succeed())

			cfg, err := config.Load()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Jira.ServerURL).To(Equal("http://jira.internal:8080"))
		})

		It("honours overrides", func() {
			Expect(os.Setenv("PORT", "9000")).To(Succeed())
			Expect(os.Setenv("JIRA_ACCEPTANCE_CRITERIA_FIELD", "customfield_12345")).To(Succeed())
			Expect(os.Setenv("JIRA_MAX_SEARCH_RESULTS", "10")).To(Succeed())

			cfg, err := config.Load()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Port).To(Equal("9000"))
			Expect(cfg.Jira.AcceptanceCriteriaField).To(Equal("customfield_12345"))
			Expect(cfg.Jira.MaxSearchResults).To(Equal(10))
		})
	})

	DescribeTable("fails when the credential triple is incomplete",
		func(server, email, token string) {
			if server != "" {
				Expect(os.Setenv("JIRA_SERVER", server)).To(Succeed())
			}
			if email != "" {
				Expect(os.Setenv("JIRA_EMAIL", email)).To(Succeed())
			}
			if token != "" {
				Expect(os.Setenv("JIRA_API_TOKEN", token)).To(Succeed())
			}

			_, err := config.Load()
			Expect(err).To(MatchError(ContainSubstring("JIRA_SERVER, JIRA_EMAIL and JIRA_API_TOKEN")))
		},
		Entry("all missing", "", "", ""),
		Entry("missing server", "", "dev@example.com", "token"),
		Entry("missing email", "https://example.atlassian.net", "", "token"),
		Entry("missing token", "https://example.atlassian.net", "dev@example.com", ""),
	)
})

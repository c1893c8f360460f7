package email

// Provider names accepted by Config.Provider.
const (
	ProviderDev      = "dev"
	ProviderPostmark = "postmark"
	ProviderMailgun  = "mailgun"
)

type Config struct {
	Provider    string `env:"EMAIL_PROVIDER" envDefault:"dev"`
	SenderEmail string `env:"SENDER_EMAIL" envDefault:"noreply@landkit.dev"`
	DevDir      string `env:"EMAIL_DEV_DIR" envDefault:"./tmp/emails"`

	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`

	MailgunDomain string `env:"MAILGUN_DOMAIN"`
	MailgunAPIKey string `env:"MAILGUN_API_KEY"`
}

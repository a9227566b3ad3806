package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	DatabaseURL string `env:"DATABASE_URL" envDefault:"minter.db"`

	Shopify Shopify `envPrefix:"SHOPIFY_"`
	Chain   Chain   `envPrefix:"CHAIN_"`
}

type Shopify struct {
	SiteURL     string `env:"SITE_URL,required"`
	AccessToken string `env:"ACCESS_TOKEN,required"`
	SecretKey   string `env:"SECRET_KEY,required"`
	APIVersion  string `env:"API_VERSION" envDefault:"2022-07"`
}

type Chain struct {
	RPCURL            string `env:"RPC_URL,required"`
	AdminPrivateKey   string `env:"ADMIN_PRIVATE_KEY,required"`
	CollectionAddress string `env:"NFT_COLLECTION_ADDRESS,required"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}

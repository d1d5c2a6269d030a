package cmd

type Config struct {
	HTTPPort        string
	KitchenTickCron string
}

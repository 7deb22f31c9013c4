package chains

type ChainData struct {
	ChainName     string
	ChainID       string
	AccountPrefix string

	NativeToken string
}

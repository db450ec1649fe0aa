package conf

type Bootstrap struct {
	Server  *Server
	Data    *Data
	Planner *Planner
}

type Server struct {
	Http *HTTP
}

type HTTP struct {
	Addr        string
	Timeout     string
	CorsOrigins []string `json:"cors_origins"`
}

type Data struct {
	Database *Database
}

// Database Source 为空时使用内存存储
type Database struct {
	Driver string
	Source string
}

type Planner struct {
	Llm          *LLM          `json:"llm"`
	Search       *Search       `json:"search"`
	Serpapi      *SerpAPI      `json:"serpapi"`
	Weather      *Weather      `json:"weather"`
	Travel       *Travel       `json:"travel"`
	AirportCache *AirportCache `json:"airport_cache"`
	Log          *Log          `json:"log"`
	Concurrency  *Concurrency  `json:"concurrency"`
	Timeouts     *Timeouts     `json:"timeouts"`
}

type LLM struct {
	Provider string `json:"provider"`
	BaseUrl  string `json:"base_url"`
	ApiKey   string `json:"api_key"`
	Model    string `json:"model"`
}

type Search struct {
	Provider string   `json:"provider"`
	Tavily   *Tavily  `json:"tavily"`
	Searxng  *SearXNG `json:"searxng"`
}

type Tavily struct {
	ApiKey string `json:"api_key"`
}

type SearXNG struct {
	BaseUrl string `json:"base_url"`
	Timeout int32  `json:"timeout"`
}

type SerpAPI struct {
	ApiKey  string `json:"api_key"`
	BaseUrl string `json:"base_url"`
}

type Weather struct {
	ApiKey  string `json:"api_key"`
	BaseUrl string `json:"base_url"`
}

type Travel struct {
	Currency  string `json:"currency"`
	Country   string `json:"country"`
	Language  string `json:"language"`
	MaxHotels int32  `json:"max_hotels"`
}

type AirportCache struct {
	Enabled       bool   `json:"enabled"`
	RedisAddr     string `json:"redis_addr"`
	RedisPassword string `json:"redis_password"`
	RedisDb       int32  `json:"redis_db"`
	Ttl           string `json:"ttl"`
}

type Log struct {
	Level string `json:"level"`
	File  string `json:"file"`
}

type Concurrency struct {
	Qps             int32 `json:"qps"`
	Rpm             int32 `json:"rpm"`
	ParallelLookups bool  `json:"parallel_lookups"`
}

type Timeouts struct {
	RemoteCall string `json:"remote_call"`
}

package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Host string
	Port string
}

type RedisCache struct {
	Host     string
	Port     string
	Password string
}

type Postgres struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type TelegramBot struct {
	Token      string
	AdminID    int64
	ChannelURL string
	WebAppURL  string
}

type Battle struct {
	Topic         string
	QuestionCount int
	RoomTTL       time.Duration
	SweepInterval time.Duration
}

type Config struct {
	HTTP        HTTPServer
	Redis       RedisCache
	Postgres    Postgres
	TelegramBot TelegramBot
	Battle      Battle
}

const logtag = "[config]"

func Load() *Config {
	configPath := flag.String("config", "", "path env file")
	flag.Parse()

	if *configPath != "" {
		if err := godotenv.Load(*configPath); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, *configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	cfg := &Config{
		HTTP:        *newHTTP(),
		Redis:       *newRedis(),
		Postgres:    *newPostgres(),
		TelegramBot: *newTelegramBot(),
		Battle:      *newBattle(),
	}

	return cfg
}

func newHTTP() *HTTPServer {
	return &HTTPServer{
		Port: getenv("HTTP_PORT", "8080"),
		Host: getenv("HTTP_HOST", "localhost"),
	}
}

func newRedis() *RedisCache {
	return &RedisCache{
		Port:     getenv("REDIS_PORT", "6379"),
		Host:     getenv("REDIS_HOST", "redis"),
		Password: getenv("REDIS_PASSWORD", ""),
	}
}

func newPostgres() *Postgres {
	return &Postgres{
		Host:     getenv("DB_HOST", "localhost"),
		Port:     getenv("DB_PORT", "5432"),
		User:     getenv("DB_USER", "admin"),
		Password: getenv("DB_PASSWORD", "shared"),
		DBName:   getenv("DB_NAME", "neetquiz"),
		SSLMode:  getenv("DB_SSLMODE", "disable"),
	}
}

func newTelegramBot() *TelegramBot {
	return &TelegramBot{
		Token:      getenv("BOT_TOKEN", ""),
		AdminID:    getenvInt64("ADMIN_ID", 0),
		ChannelURL: getenv("CHANNEL_URL", "https://t.me/errorkid_05"),
		WebAppURL:  getenv("WEB_APP_URL", "http://localhost:8080"),
	}
}

func newBattle() *Battle {
	return &Battle{
		Topic:         getenv("BATTLE_TOPIC", ""),
		QuestionCount: int(getenvInt64("BATTLE_QUESTIONS", 5)),
		RoomTTL:       getenvDuration("BATTLE_ROOM_TTL", 30*time.Minute),
		SweepInterval: getenvDuration("BATTLE_SWEEP_INTERVAL", 5*time.Minute),
	}
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	return val
}

func getenvInt64(key string, defaultValue int64) int64 {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		log.Fatalf("%s %s is not an integer : %v", logtag, key, err)
	}
	return parsed
}

func getenvDuration(key string, defaultValue time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(val)
	if err != nil {
		log.Fatalf("%s %s is not a duration : %v", logtag, key, err)
	}
	return parsed
}

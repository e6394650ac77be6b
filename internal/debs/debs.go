package deps

import (
	"log"

	"github.com/civitrack/civitrack/config"
	"github.com/civitrack/civitrack/internal/db"
	"github.com/civitrack/civitrack/util/storage"
	"github.com/civitrack/civitrack/util/websockets"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Dependencies struct {
	DB         *db.DB
	Cloudinary *storage.Cloudinary
	WebSocket  *websockets.WebSocketManager
}

func New(cfg *config.Config) *Dependencies {
	database, err := db.New(cfg.Dsn)
	if err != nil {
		log.Panicln("failed to connect to database", "error", err)
	}

	cloudinary := storage.NewCloudinary(cfg)
	websocket := websockets.NewWebSocketManager()

	deps := Dependencies{
		DB:         database,
		Cloudinary: cloudinary,
		WebSocket:  websocket,
	}
	return &deps
}

func (d *Dependencies) Pool() *pgxpool.Pool {
	return d.DB.Pool()
}

package uid

import (
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/labstack/gommon/log"
)

var (
	node *snowflake.Node
	once sync.Once
)

func Init(machineID int64) {
	once.Do(func() {
		var err error
		node, err = snowflake.NewNode(machineID)
		if err != nil {
			log.Fatalf("failed to initialize snowflake node: %v", err)
		}
	})
}

// Generate returns the next surrogate ID. Every row the service
// creates gets its primary key from here instead of the database
// autoincrement, so IDs stay unique across instances.
func Generate() int64 {
	if node == nil {
		log.Fatalf("uid package not initialized")
	}
	return node.Generate().Int64()
}

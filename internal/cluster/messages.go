package cluster

// Tarea enviada desde el coordinador (API o job batch) a cada sim node:
// cada nodo procesa los juegos del catálogo cuyo índice cae en su shard.
type RebuildTask struct {
	ShardID int `json:"shardId"` // id del shard (0..Shards-1)
	Shards  int `json:"shards"`  // total de shards/nodos
	K       int `json:"k"`       // vecinos por juego
	Workers int `json:"workers"` // workers locales dentro del nodo
}

// Respuesta de un sim node: cuántas filas escribió y qué juegos fallaron.
// Los nodos escriben directo en Mongo, así que el coordinador solo agrega
// los conteos, no las filas.
type RebuildResponse struct {
	ShardID     int   `json:"shardId"`
	Written     int   `json:"written"`
	FailedGames []int `json:"failedGames,omitempty"`
}

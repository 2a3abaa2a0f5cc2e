package main

import (
	"github.com/matryer/way"
)

const URI_WS = "/play"
const URI_MAZE = "/maze/:rows/:columns"

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("GET", URI_WS, s.GameServer.HandleHttpCall())
	s.router.HandleFunc("GET", URI_MAZE, s.GameServer.HandleMazeText())
}

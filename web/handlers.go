package web

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

func (s *Server) HandlerScene(w http.ResponseWriter, r *http.Request) {
	data := s.pub.LatestJSON()
	if data == nil {
		WriteError(w, errNoSnapshot)
	} else {
		WriteRawJson(w, data)
	}
}

func (s *Server) HandlerSceneYaml(w http.ResponseWriter, r *http.Request) {
	if snapshot, ok := s.pub.Latest(); !ok {
		WriteError(w, errNoSnapshot)
	} else {
		WriteYaml(w, snapshot)
	}
}

func (s *Server) HandlerNode(w http.ResponseWriter, r *http.Request) {
	param := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(param, 10, 64)
	if err != nil {
		WriteError(w, errors.Wrapf(errBadRequest, "param '%s' is not node id", param))
		return
	}

	snapshot, ok := s.pub.Latest()
	if !ok {
		WriteError(w, errNoSnapshot)
		return
	}
	node, ok := snapshot.Node(id)
	if !ok {
		WriteError(w, errors.Wrapf(errNotFound, "node %d", id))
		return
	}
	WriteJson(w, node)
}

func (s *Server) HandlerWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// upgrader already replied with an http error
		log.Printf("[web] ws upgrade error: %v", err)
		return
	}
	s.pub.ServeConn(conn)
}

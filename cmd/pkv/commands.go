package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"pkv/pkg/store"
)

func run(st store.Store, command string, args []string) error {
	switch command {
	case "get":
		return runGet(st, args)
	case "set":
		return runSet(st, args)
	case "set-string":
		return runSetString(st, args)
	case "del":
		return runDel(st, args)
	case "keys":
		return runKeys(st)
	case "clear":
		return st.Clear()
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func runGet(st store.Store, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: get <key>")
	}
	var value any
	if err := st.Get(args[0], &value); err != nil {
		return err
	}
	out, err := json.Marshal(value)
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func runSet(st store.Store, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: set <key> <json>")
	}
	var value any
	if err := json.Unmarshal([]byte(args[1]), &value); err != nil {
		return fmt.Errorf("value is not valid JSON: %w", err)
	}
	return st.Set(args[0], value)
}

func runSetString(st store.Store, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: set-string <key> <value>")
	}
	return st.SetString(args[0], args[1])
}

func runDel(st store.Store, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: del <key>")
	}
	return st.Remove(args[0])
}

func runKeys(st store.Store) error {
	keys, err := st.Keys()
	if err != nil {
		return err
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Println(k)
	}
	return nil
}

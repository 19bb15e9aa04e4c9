package main

import "context"

// addAdmin creates the named admin account, or promotes an existing user.
func (cli *commandLine) addAdmin(uname, pwd string) error {
	_, err := cli.usrSvc.EnsureAdmin(context.Background(), uname, pwd)
	return err
}

package log

// discard drops every entry. It is the logger until the caller sets one.
type discard struct{}

func (discard) Errorf(string, ...interface{}) {}
func (discard) Error(...interface{})          {}
func (discard) Warnf(string, ...interface{})  {}
func (discard) Warn(...interface{})           {}
func (discard) Infof(string, ...interface{})  {}
func (discard) Info(...interface{})           {}
func (discard) Debugf(string, ...interface{}) {}
func (discard) Debug(...interface{})          {}
